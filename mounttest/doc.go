// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package mounttest has helpers for testing mount applications and adapters.
package mounttest
