// Package sheetscrape fetches a single web page, extracts the text of every
// element matching a CSS selector, and saves the fragments as rows of an
// XLSX workbook.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, xlsx/).
package sheetscrape
