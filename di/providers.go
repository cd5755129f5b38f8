package di

import (
	"github.com/Ayy-man/spa-booking-v2-sub002/config"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/scheduling"
)

// provideEngine maps the environment-driven scheduling section onto the
// engine's policy knobs.
func provideEngine(cfg *config.Config) *scheduling.Engine {
	return scheduling.NewEngine(scheduling.Config{
		BufferMinutes:          cfg.Scheduling.BufferMinutes,
		SlotGranularityMinutes: cfg.Scheduling.SlotGranularityMinutes,
		OpenTime:               cfg.Scheduling.OpenTime,
		CloseTime:              cfg.Scheduling.CloseTime,
		CouplesRoomPreference:  cfg.Scheduling.CouplesRoomPreference,
		CouplesRoomMinCapacity: cfg.Scheduling.CouplesRoomMinCapacity,
		AnyStaffID:             cfg.Scheduling.AnyStaffID,
	})
}
