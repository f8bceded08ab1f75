package types

import "time"

// InitResult holds the result of the 'init' command.
type InitResult struct {
	Command     string      `json:"command" yaml:"command"`
	Timestamp   time.Time   `json:"timestamp" yaml:"timestamp"`
	DryRun      bool        `json:"dryRun" yaml:"dryRun"`
	Kind        PackageKind `json:"kind" yaml:"kind"`
	PackageName string      `json:"packageName" yaml:"packageName"`
	ModuleName  string      `json:"moduleName" yaml:"moduleName"`
	Path        string      `json:"path" yaml:"path"`
	// Created and Skipped hold slash-separated paths relative to Path
	Created []string `json:"created" yaml:"created"`
	Skipped []string `json:"skipped" yaml:"skipped"`
	Message string   `json:"message" yaml:"message"`
}

// KindInfo describes one package kind and the paths its plan produces
type KindInfo struct {
	Kind        PackageKind `json:"kind" yaml:"kind"`
	Description string      `json:"description" yaml:"description"`
	Files       []string    `json:"files" yaml:"files"`
}

// KindsResult holds the result of the 'kinds' command.
type KindsResult struct {
	Kinds []KindInfo `json:"kinds" yaml:"kinds"`
}
