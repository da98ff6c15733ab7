// Package clinicscrape extracts business-listing data (name, phone, postal
// address, services, description) from small business websites, with a
// focus on Korean postal addresses embedded in free text, structured markup
// or script payloads.
//
// This package contains domain types, interfaces and the pure text pipeline
// (address cleaning, validation and pattern matching) following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package clinicscrape
