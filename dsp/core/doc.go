// Package core provides the numeric constraints and small scalar helpers
// shared by the filtering packages in this module.
package core
