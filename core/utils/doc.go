// Package utils provides common helpers for the requirement-monitor application.
// It includes path normalization used when mapping storage entries onto
// requirement file records, and other shared logic that doesn't fit into
// domain-specific packages.
package utils
