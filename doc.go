// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package mount holds the ambient pieces shared by the mount subpackages:
configuration through spf13/viper, structured logging through go.uber.org/zap,
and process exit codes for go.uber.org/fx applications.

The interesting parts live elsewhere:

  - mountentity reads and writes request and response bodies
  - mountdeploy resolves the root path of a deployed application
  - mounthttp runs an HTTP server adapter bound to a deployment
  - mountdispatch is a small dispatcher that routes to resource singletons
*/
package mount
