// Package ports defines the interfaces that connect the session to the
// outside world.
//
// # Port Interfaces
//
//   - [Exporter]: writes the ledger table to a file
//   - [TableSink]: displays ledger rows
//   - [Notifier]: shows warnings and confirmations to the user
//
// The session (internal/app) depends only on these interfaces. Adapters in
// internal/adapters implement them for the terminal and the file system.
package ports
