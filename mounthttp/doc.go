// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package mounthttp runs an HTTP server bound to a single deployment.

An Adapter owns the listener lifecycle.  Once started, it resolves the
deployment's root path exactly once, rejects requests outside that path, and
hands everything else to a Dispatcher with the root path stripped.  Response
values are written through mountentity.

Adapters can be used directly or bound to an fx.App with Provide.
*/
package mounthttp
