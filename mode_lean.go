//go:build pstree_lean

package pstree

const defaultMode = ModeFlat
