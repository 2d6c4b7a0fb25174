// Copyright 2026 The Multical Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log implements leveled logs for the multical commands. Which
// levels are emitted is a process-wide setting, normally taken from the
// --log_level option:
//
//      mode, err := log.ParseLevel("WARNING") // log.WarnMode | log.ErrorMode
//      if err != nil {
//          ...
//      }
//      log.SetGlobalLogMode(mode)
//
// Basic example:
//
//      logger := log.New()
//      logger.Info("hello, world")
//
// Loggers write to a synchronized os.Stderr unless told otherwise. Writers
// compose:
//
//      writer := log.MultiWriter(os.Stderr, logFile)
//      writer = log.SynchronizedWriter(writer)
//
//      logf := log.Lmode | log.Ltime | log.Lshortfile
//      logger := log.New(log.Writer(writer), log.Flags(logf))
package log
