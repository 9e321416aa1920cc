/*
Copyright 2026 The KubeLB Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"k8c.io/ingress-report/internal/constants"
)

// Config holds the configuration for a report run
type Config struct {
	// CacheDir is the directory containing the per-cluster snapshot files
	CacheDir string
	// OutputDir is the directory the Markdown reports are written to
	OutputDir string
	// ExpectedClusters are the cluster group prefixes that every run must
	// observe at least one snapshot for
	ExpectedClusters []string
}

// LoadConfig loads configuration from flags, environment variables, and defaults
func LoadConfig(cacheDirFlag, outputDirFlag, expectedFlag string) (*Config, error) {
	cfg := &Config{
		CacheDir:  resolveCacheDir(cacheDirFlag),
		OutputDir: resolveOutputDir(outputDirFlag),
	}

	var err error
	cfg.ExpectedClusters, err = resolveExpectedClusters(expectedFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve expected clusters: %w", err)
	}

	return cfg, nil
}

// resolveCacheDir resolves the snapshot cache directory with proper precedence
func resolveCacheDir(flagValue string) string {
	// 1. Command line flag has highest priority
	if flagValue != "" {
		return flagValue
	}

	// 2. Environment variable
	if envDir := os.Getenv("INGRESS_REPORT_CACHE_DIR"); envDir != "" {
		return envDir
	}

	// 3. Date-stamped default, computed at process start
	return DefaultCacheDir(time.Now())
}

// DefaultCacheDir returns the conventional cache directory name for a date.
func DefaultCacheDir(t time.Time) string {
	return constants.CacheDirPrefix + t.Format(constants.CacheDirDate)
}

// resolveOutputDir resolves the report output directory with proper precedence
func resolveOutputDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if envDir := os.Getenv("INGRESS_REPORT_OUTPUT_DIR"); envDir != "" {
		return envDir
	}

	return constants.DefaultOutputDir
}

// resolveExpectedClusters resolves the expected cluster group prefixes.
// An empty result is valid: the completeness check then trivially passes.
func resolveExpectedClusters(flagValue string) ([]string, error) {
	value := flagValue
	if value == "" {
		value = os.Getenv("EXPECTED_CLUSTERS")
	}
	if value == "" {
		return nil, nil
	}

	var groups []string
	for _, group := range strings.Split(value, ",") {
		group = strings.TrimSpace(group)
		if group == "" {
			return nil, fmt.Errorf("invalid expected clusters %q: empty group name", value)
		}
		groups = append(groups, group)
	}
	return groups, nil
}
