// Package domain holds DTOs for creators http and service contracts
package domain

import "trendlens/internal/services/api/shared"

// Input is the raw parameter object for every creators operation
type Input = shared.FilterInput

// Result is the discriminated operation payload
type Result = shared.OpResult
