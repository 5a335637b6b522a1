// Package models contains golden references and their holdings.
package models
