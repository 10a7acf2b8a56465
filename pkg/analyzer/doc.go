// Package analyzer aggregates plant collections and audits batches of
// candidate records.
//
// Statistics builds frequency tables (type, trait, disease, region, email
// domain) over validated plants. Ranked orders a table for display.
// ValidateBatch partitions raw records into valid and invalid ones and keeps
// the index, data and messages of every rejected record for audit reports.
// The Extract helpers mine free text with the unanchored catalog patterns.
//
// Every function is pure and safe for concurrent use.
package analyzer
