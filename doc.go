// Package finlog extends plain leveled logging with fine-grained severity
// levels and a process-wide logging session.
//
// The conventional five levels leave large numeric gaps; finlog names
// fourteen additional levels interleaved between WARNING, INFO, DEBUG and the
// NOTSET floor, so verbosity can be dialed in small steps. A Session owns the
// attached sinks (console, optional file), each with its own severity
// threshold and output template:
//
//	finlog.Activate(finlog.L5, finlog.WithFilePath("run.log"))
//	defer finlog.Deactivate()
//
//	log := finlog.NewLogger("ingest")
//	log.Log(finlog.L3, "loaded %d rows", n)
//
// Activation always tears down any prior sinks first, so repeated calls never
// accumulate handlers; Deactivate leaves zero sinks attached and is safe to
// call any number of times.
package finlog
