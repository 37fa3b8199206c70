// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package mountentity converts between streamed HTTP bodies and in-process values.

Reads materialize a body exactly once, using fixed-size chunked reads against a
pooled buffer.  Copy never holds more than a single chunk of a body in memory.
None of the functions in this package close the streams they are given.
*/
package mountentity
