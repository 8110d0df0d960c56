// Package logger is a small leveled logger built around one process-wide root.
//
// Levels, from most to least permissive: all, debug, info, warning, error,
// none. The root owns the global level; children created with Root.Create
// follow it live unless they were given their own level.
//
//	log, _ := logger.Create("billing")
//	log.Info("charged", amount)
//	log.WithContext(ctx).Error(err)
//
// Every line reads
//
//	2025-01-01T12:00:00.000+01:00 [billing][<txid>] INFO: charged 42
//
// debug and info go to stdout, warning and error to stderr. The txid comes
// from the context bound with WithContext (see package ambient).
package logger
