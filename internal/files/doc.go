// Package files provides export-file discovery and batch signal loading.
//
// Discovery enumerates a folder's instrument export files by the .DTA
// naming convention. Loader parses every discovered file through the signal
// factory, dropping files a type filter skips and aborting the batch on the
// first structural error. Loading is parallel across files up to a
// configurable worker count; each file's parse is internally sequential and
// no state is shared between parses.
//
// Example usage:
//
//	loader := files.NewLoader(logger, 4)
//	signals, err := loader.LoadSignals(ctx, "runs", signal.Options{
//		TypeFilter: domain.SignalTypeEISPOT,
//	})
package files
