// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires configuration, local storage, the server adapter, and the sync
// engine into a single process lifecycle and runs the engine's trigger loop
// until the process is interrupted.
package client
