// Package models contains the persisted truth-source configuration.
package models
