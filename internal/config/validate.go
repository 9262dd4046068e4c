// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func validate(raw []byte) error {
	sch, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("decoding config for validation: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("%#v", err)
	}
	return nil
}
