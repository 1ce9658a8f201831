// Package sip simulates a recurring fixed-amount investment plan (a SIP)
// against a historical NAV series and computes its returns.
//
// The core functionalities include:
//   - Schedule Generation: one intended contribution date per calendar month,
//     with the target day clamped to shorter months.
//   - Price Resolution: each intended date executes at the first available NAV
//     on or after it; unresolvable dates are skipped and reported.
//   - Accumulation: a sequential fold turning the schedule and the NAV series
//     into accumulated units, invested capital, and per-period performance
//     records.
//   - Return Metrics: absolute return, money-weighted annualized return (XIRR,
//     solved by Newton-Raphson with a bracketed bisection fallback), and a
//     simplified compound annual growth rate.
//   - NAV Import: tabular report, investing.com CSV, and JSONPath-driven JSON
//     feeds, producing a clean sorted price history with row-level issue
//     counting.
//
// This package serves as the foundational logic for the `sipc` command-line
// tool; presentation and formatting live in the renderer package.
package sip
