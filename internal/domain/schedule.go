package domain

import (
	"errors"
	"fmt"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/types"
)

// ErrInvalidSchedule возвращается при некорректной конфигурации расписания
var ErrInvalidSchedule = errors.New("invalid schedule config")

// ScheduleConfig holds the daily operating window and slot parameters.
// Passed explicitly into the availability and conflict components -
// there are no process-wide schedule globals.
type ScheduleConfig struct {
	OpeningTime            types.TimeString
	ClosingTime            types.TimeString
	BufferMinutes          int
	SlotGranularityMinutes int
}

// DefaultScheduleConfig возвращает конфигурацию расписания по умолчанию
func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		OpeningTime:            types.TimeString(DefaultOpeningTime),
		ClosingTime:            types.TimeString(DefaultClosingTime),
		BufferMinutes:          DefaultBufferMinutes,
		SlotGranularityMinutes: DefaultSlotGranularityMinutes,
	}
}

// Validate проверяет корректность конфигурации расписания
func (c ScheduleConfig) Validate() error {
	if err := c.OpeningTime.Validate(); err != nil {
		return fmt.Errorf("%w: opening time: %v", ErrInvalidSchedule, err)
	}
	if err := c.ClosingTime.Validate(); err != nil {
		return fmt.Errorf("%w: closing time: %v", ErrInvalidSchedule, err)
	}
	if !c.OpeningTime.IsBefore(c.ClosingTime) {
		return fmt.Errorf("%w: opening time %s must be before closing time %s",
			ErrInvalidSchedule, c.OpeningTime, c.ClosingTime)
	}
	if c.SlotGranularityMinutes < MinSlotGranularity || c.SlotGranularityMinutes > MaxSlotGranularity {
		return fmt.Errorf("%w: slot granularity must be between %d and %d minutes",
			ErrInvalidSchedule, MinSlotGranularity, MaxSlotGranularity)
	}
	if c.BufferMinutes < MinBufferMinutes || c.BufferMinutes > MaxBufferMinutes {
		return fmt.Errorf("%w: buffer must be between %d and %d minutes",
			ErrInvalidSchedule, MinBufferMinutes, MaxBufferMinutes)
	}
	return nil
}
