// Package events defines the leveling related events emitted on the event bus.
//
// Available event types:
//   - RunEvent: leveling run start and completion
//   - TaskEvent: per-task scheduling outcome
//   - WarningEvent: structural warning raised during derivation or leveling
package events
