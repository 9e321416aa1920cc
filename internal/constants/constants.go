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

package constants

const (
	// Snapshot file naming conventions
	SnapshotSuffix = "_ingress.json"
	ReportSuffix   = "_ingress.md"
	CacheDirPrefix = "info_cache_"
	CacheDirDate   = "20060102"

	// CLI defaults
	DefaultOutputDir = "results"

	// Port constants
	HTTPPort  = "80"
	HTTPSPort = "443"

	// Placeholder substituted for missing hosts and addresses
	PlaceholderValue = "N/A"

	// Separator between joined hosts, addresses and ports
	JoinSeparator = ", "
)
