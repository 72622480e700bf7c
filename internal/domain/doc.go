// Package domain contains shared domain types used across entity sub-packages.
// The Project aggregate and its children live in domain/project. This root
// package holds sentinel errors, the DomainError and ValidationError types,
// the caller Principal, and the Action interface consumed by the application
// layer.
package domain
