// Package tallybook provides the bookkeeping core for a small consultancy or
// freelance business. It is designed to be local-first and auditable: all
// data lives in human-readable JSONL files, and every balance or total is
// derived from the entity graph on read, never cached.
//
// The core functionalities include:
//   - Entity Store: insertion-ordered collections of companies, employees,
//     clients, expenses, expense reports and generated statements.
//   - Tenancy: each company claims a set of entity identifiers; all
//     cross-entity filtering goes through these owned sets.
//   - Financial Computation: pure functions deriving salary prorations,
//     project balances, client totals and personal-account totals.
//   - Workflows: approval and reimbursement state machines for expenses,
//     expense reports and personal-account transactions.
//   - Report Generation: immutable salary-slip and client-statement
//     snapshots built from a date period and the current entity graph.
//   - Personal Funds: flows linking out-of-pocket spending to a company
//     expense and a pending personal-account transaction.
//
// This package serves as the foundational logic for the `tally` command-line
// tool. It is strictly single-threaded; callers serialize all operations.
package tallybook
