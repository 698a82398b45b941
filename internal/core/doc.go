// Package core provides the session-scoped operations behind the explore UI.
//
// It holds no transport logic and can be used by web handlers, the CLI or
// tests alike.
//
// # Sessions
//
// Every browser gets a session identified by a random UUID. A session owns at
// most one loaded [dataset.Table]; loading a new file, uploading nothing or a
// failed upload replaces or clears it. Sessions live in process memory only
// and expire after [Options.SessionTTL] without use. Expired sessions are
// swept on access; when [Options.MaxSessions] is reached the least recently
// used session is evicted.
//
// # Ingestion
//
// [Service.Ingest] runs the dataset readers under an [IngestLimiter] so a
// burst of large uploads cannot parse in parallel without bound.
//
// # Views and plots
//
// [Service.Views], [Service.RunView], [Service.RenderPlot] and
// [Service.PlotCode] recompute their output from the session's table on
// every call. Nothing is cached.
//
// # Error Handling
//
// Technical errors are mapped to user-facing messages with [MapError]. See
// error_messages.go for the code reference.
package core
