// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package contract provides input limits shared by sigdoc components.
//
// # Docstring Size Limit
//
// Generator signatures are a few hundred bytes at most. Anything much larger
// is almost certainly not a signature and is skipped rather than scanned:
//
//	// Default limit is 64 KiB
//	limit := contract.MaxDocBytes()
//
//	result := contract.ValidateRawDoc(raw)
//	if !result.OK {
//	    logger.Warn("docstring.inject.rejected", "reason", result.Message)
//	}
//
// # Configuration via Environment
//
// The limit can be adjusted via the SIGDOC_MAX_DOC_BYTES environment
// variable:
//
//	export SIGDOC_MAX_DOC_BYTES=131072  # 128 KiB
//
// If the environment variable is not set or invalid, DefaultMaxDocBytes is
// used.
package contract
