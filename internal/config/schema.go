// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package config

var configSchema = `
{
  "type": "object",
  "properties": {
    "combineStates": {
      "description": "Equal snapshots share node identity; if false every observation becomes its own state.",
      "type": "boolean"
    },
    "onlyOutput": {
      "description": "Drop input frames before they reach the builder.",
      "type": "boolean"
    },
    "combinedStates": {
      "description": "Concatenate input and output canonical values into one full-system snapshot.",
      "type": "boolean"
    },
    "countDuplicates": {
      "description": "Track raw occurrence counts of each interned value, for diagnostics only.",
      "type": "boolean"
    },
    "logLevel": {
      "description": "One of debug, info, notice, warn, err, crit.",
      "type": "string",
      "enum": ["debug", "info", "notice", "warn", "err", "crit"]
    },
    "metricsAddr": {
      "description": "Address for the optional Prometheus metrics listener (e.g. ':9090'). Empty disables it.",
      "type": "string"
    },
    "renderCacheEntries": {
      "description": "Maximum number of rendered printer strings kept in the render cache.",
      "type": "integer",
      "minimum": 0
    }
  }
}`
