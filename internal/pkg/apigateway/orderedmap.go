// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package apigateway

// orderedResources is an insertion-order-preserving map of resources keyed by
// path-prefix. Re-inserting an existing key overwrites the value in place so
// discovery order is the order of first reference.
type orderedResources struct {
	keys  []string
	items map[string]Resource
}

func newOrderedResources() *orderedResources {
	return &orderedResources{items: map[string]Resource{}}
}

func (m *orderedResources) put(key string, r Resource) {
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.items[key] = r
}

func (m *orderedResources) values() []Resource {
	out := make([]Resource, 0, len(m.keys))
	for _, key := range m.keys {
		out = append(out, m.items[key])
	}
	return out
}

// orderedOptions mirrors orderedResources for CORS preflight methods.
type orderedOptions struct {
	keys  []string
	items map[string]OptionsMethod
}

func newOrderedOptions() *orderedOptions {
	return &orderedOptions{items: map[string]OptionsMethod{}}
}

func (m *orderedOptions) put(key string, o OptionsMethod) {
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.items[key] = o
}

func (m *orderedOptions) values() []OptionsMethod {
	out := make([]OptionsMethod, 0, len(m.keys))
	for _, key := range m.keys {
		out = append(out, m.items[key])
	}
	return out
}
