package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vreeburg/warehouse-dashboard/internal/record"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from record.OrderStatus
		to   record.OrderStatus
		want bool
	}{
		{name: "pending_to_picked", from: record.StatusPending, to: record.StatusPicked, want: true},
		{name: "picked_to_packed", from: record.StatusPicked, to: record.StatusPacked, want: true},
		{name: "packed_to_shipped", from: record.StatusPacked, to: record.StatusShipped, want: true},
		{name: "pending_to_processed", from: record.StatusPending, to: record.StatusProcessed, want: true},
		{name: "picked_to_processed", from: record.StatusPicked, to: record.StatusProcessed, want: true},
		{name: "backwards_picked_to_pending", from: record.StatusPicked, to: record.StatusPending, want: false},
		{name: "skip_pending_to_packed", from: record.StatusPending, to: record.StatusPacked, want: false},
		{name: "shipped_is_terminal", from: record.StatusShipped, to: record.StatusProcessed, want: false},
		{name: "processed_is_terminal", from: record.StatusProcessed, to: record.StatusPending, want: false},
		{name: "unknown_status", from: record.OrderStatus("bogus"), to: record.StatusPicked, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, record.CanTransition(tt.from, tt.to))
		})
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []record.OrderStatus{
		record.StatusPending, record.StatusPicked, record.StatusPacked,
		record.StatusShipped, record.StatusProcessed,
	} {
		assert.True(t, s.Valid(), s.String())
	}
	assert.False(t, record.StatusAll.Valid())
	assert.False(t, record.OrderStatus("").Valid())
}

func TestWorkerRole_Compatibility(t *testing.T) {
	tests := []struct {
		role    record.WorkerRole
		canPick bool
		canPack bool
	}{
		{record.RolePicker, true, false},
		{record.RolePacker, false, true},
		{record.RoleSupervisor, true, true},
		{record.RoleManager, true, true},
		{record.WorkerRole("Intern"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.canPick, tt.role.CanPick())
			assert.Equal(t, tt.canPack, tt.role.CanPack())
		})
	}
}

func TestSettings_LowStockThreshold(t *testing.T) {
	tests := []struct {
		name     string
		settings record.Settings
		want     int
	}{
		{name: "absent", settings: record.Settings{}, want: 60},
		{name: "valid", settings: record.Settings{record.SettingLowStockThreshold: "25"}, want: 25},
		{name: "non_numeric", settings: record.Settings{record.SettingLowStockThreshold: "lots"}, want: 60},
		{name: "zero", settings: record.Settings{record.SettingLowStockThreshold: "0"}, want: 60},
		{name: "negative", settings: record.Settings{record.SettingLowStockThreshold: "-5"}, want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.LowStockThreshold(60))
		})
	}
}

func TestSettings_Merge(t *testing.T) {
	base := record.Settings{"company_name": "Vreeburg", "primary_color": "#3b82f6"}
	merged := base.Merge(record.Settings{"primary_color": "#10b981", "accent_color": "#f59e0b"})

	assert.Equal(t, "Vreeburg", merged["company_name"])
	assert.Equal(t, "#10b981", merged["primary_color"])
	assert.Equal(t, "#f59e0b", merged["accent_color"])
	assert.Equal(t, "#3b82f6", base["primary_color"], "merge must not mutate the receiver")
}
