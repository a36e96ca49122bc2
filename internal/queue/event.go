// Package queue defines the message payloads exchanged over the broker and
// the background consumer that seeds default availability for new halls.
package queue

// HallCreatedQueue is the durable queue hall-creation events travel on.
const HallCreatedQueue = "hall.created"

// HallCreatedEvent is published when a superadmin creates a hall. The
// consumer reacts by seeding the hall's first SeedDays calendar days with
// AVAILABLE entries at the standard slot boundaries. SeedDays is carried in
// the message so the policy in force at creation time wins, not the
// consumer's current configuration.
type HallCreatedEvent struct {
	HallID   uint64 `json:"hall_id"`
	CenterID uint64 `json:"center_id"`
	HallName string `json:"hall_name"`
	SeedDays int    `json:"seed_days"`
}
