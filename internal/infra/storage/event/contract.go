package event

import "github.com/calendrio/calendar-backend/pkg/dbmetrics"

// The repository works against the dbmetrics executor interfaces so it can
// run on the bare pool, the instrumented pool, or inside a transaction
// carried by the context.
type DBExecutor = dbmetrics.DBExecutor
