// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package validation validates request structs with go-playground/validator v10.
//
// A single validator instance is built once and shared; it caches struct
// metadata and is safe for concurrent use. Field names in error messages come
// from the `query` or `json` struct tag so they match what the client sent.
//
// # Custom Tags
//
//   - recipe_id: 1-128 characters, no whitespace
//   - period: daily, weekly or monthly
//
// # Example
//
//	type params struct {
//	    Type     string `query:"type" validate:"oneof=personalized similar"`
//	    BaseID   string `query:"baseRecipeId" validate:"required_if=Type similar,omitempty,recipe_id"`
//	}
//
//	if verr := validation.ValidateStruct(&p); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    ...
//	}
package validation
