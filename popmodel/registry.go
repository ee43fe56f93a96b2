// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package popmodel

import (
	"fmt"
	"sort"
	"sync"
)

// The registry lets model packages publish their models under stable
// names so inference configurations and CLIs can refer to them by
// string.

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Model)
)

// Register publishes m under name. It panics if the name is already
// taken; model names are a flat global namespace.
func Register(name string, m Model) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("popmodel: duplicate model name %q", name))
	}
	registry[name] = m
}

// Lookup returns the model registered under name, or an error naming
// the unknown model.
func Lookup(name string) (Model, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	m, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("popmodel: unknown model %q", name)
	}
	return m, nil
}

// Names returns the registered model names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
