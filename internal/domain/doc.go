// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/stage). This root package
// holds sentinel errors and the ordered validation error type shared by every
// entity.
package domain
