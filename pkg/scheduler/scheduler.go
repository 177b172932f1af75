// Package scheduler одноразовые отложенные задачи поверх time.AfterFunc.
//
// Задача отменяема до срабатывания, поэтому слой, который её планирует,
// может подменить Scheduler в тестах и запускать callback детерминированно.
package scheduler

import "time"

// Task запланированная одноразовая задача
type Task struct {
	timer *time.Timer
}

// Cancel отменяет задачу, если она ещё не успела выполниться.
// Возвращает true, если задача была отменена до срабатывания.
func (t *Task) Cancel() bool {
	if t == nil || t.timer == nil {
		return false
	}
	return t.timer.Stop()
}

// Scheduler планировщик одноразовых задач
type Scheduler struct{}

// New создает новый планировщик
func New() *Scheduler {
	return &Scheduler{}
}

// Schedule выполняет fn в отдельной горутине после задержки delay
func (s *Scheduler) Schedule(delay time.Duration, fn func()) *Task {
	return &Task{timer: time.AfterFunc(delay, fn)}
}
