// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package mountdispatch is a mounthttp.Dispatcher that routes requests to
handlers contributed by a deployment's singletons.

Any singleton that implements Resource contributes Routes.  Route paths are
relative to the deployment's root path and use gorilla/mux templates, so
variables like {id} are available to handlers through Vars.
*/
package mountdispatch
