// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the terminal registration form.
//
// It chooses where remembered usernames are kept (memory or a database
// table), starts the cookie sweeper when a database is used and shows the
// form until the user quits.
package client
