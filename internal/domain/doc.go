// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/escrow). This root
// package holds sentinel errors, validation types, and shared field messages.
package domain
