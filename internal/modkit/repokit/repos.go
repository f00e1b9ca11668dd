// Package repokit is the surface domain repos are written against
package repokit

import "moodlog/internal/platform/store"

type (
	Queryer    = store.RowQuerier
	TxRunner   = store.TxRunner
	Rows       = store.Rows
	Row        = store.Row
	CommandTag = store.CommandTag
)
