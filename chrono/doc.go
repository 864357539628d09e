// Package chrono provides calendar value types that the standard time
// package has no direct shape for: plain dates, wall-clock times, local
// date-times, month-day and year-month pairs, years, date-based periods,
// zone ids and zone offsets. Each type has one canonical textual form plus
// documented lenient inbound variants.
package chrono
