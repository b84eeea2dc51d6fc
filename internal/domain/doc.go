// Package domain contains the core entities and value objects for paycalc.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (file system, terminal, logging) and holds only
// the records that flow between the calculator, the session and the sinks.
//
// # Entities
//
//   - [InputRecord]: a validated set of form values for one calculation
//   - [ResultRecord]: the pay derived from an InputRecord
//   - [Row]: the display strings of a ResultRecord, as shown in the table
//   - [Computation]: the optional "last computed" result of a session
package domain
