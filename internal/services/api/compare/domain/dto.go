// Package domain holds compare DTOs and ports
package domain

import "trendlens/internal/services/api/shared"

// Input is the shared filter payload for every compare operation
type Input = shared.FilterInput

// Result is the shared operation result envelope
type Result = shared.OpResult
