// SPDX-License-Identifier: EPL-2.0

// Package ui provides the bubbletea terminal player for wavescope.
package ui
