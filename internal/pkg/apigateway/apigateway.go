// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package apigateway expands flat route declarations into the REST API
// resource tree required by CloudFormation.
//
// Authors declare routes per function ("/foo", "/foo/bar", "/foo/baz") while
// API Gateway wants one resource per path segment with explicit parent links
// and no duplicate resources for shared prefixes. The synthesizer derives that
// tree deterministically so nobody has to maintain it by hand.
package apigateway

import (
	"fmt"
	"strings"
)

// resourcePrefix is the logical ID prefix shared by every synthesized
// resource. The spelling is load-bearing: deployed templates reference these
// IDs, so it must not change.
const resourcePrefix = "ApiGateWayResource"

// Route is one path+method declaration owned by a function.
type Route struct {
	Lambda string
	API    string
	Path   string
	Method string
	Cors   bool
}

// Resource is a synthesized AWS::ApiGateway::Resource entity. Parents holds
// the reference expression for the parent resource: the REST API's root
// resource for first segments, the previous prefix's resource otherwise.
type Resource struct {
	Name     string `yaml:"name"`
	PathPart string `yaml:"pathPart"`
	Parents  string `yaml:"parents"`
	API      string `yaml:"api"`
}

// Method is a synthesized AWS::ApiGateway::Method entity bound to a function.
// Resource holds the reference expression for the resource the method attaches
// to: the REST API's built-in root resource for a "/" route, the synthesized
// resource otherwise.
type Method struct {
	Name     string `yaml:"name"`
	Method   string `yaml:"method"`
	Cors     bool   `yaml:"cors"`
	Resource string `yaml:"resource"`
	Lambda   string `yaml:"lambda"`
	API      string `yaml:"api"`
}

// OptionsMethod is the CORS preflight method for a resource. There is at most
// one per resource no matter how many CORS routes share the path.
type OptionsMethod struct {
	Name     string `yaml:"name"`
	Resource string `yaml:"resource"`
	API      string `yaml:"api"`
}

// Dependency lists the method names an API's deployment must wait for.
type Dependency struct {
	Name    string   `yaml:"name"`
	Methods []string `yaml:"methods"`
}

// Routing is the synthesizer's output, ready to be merged into the
// configuration document.
type Routing struct {
	Resources    []Resource
	Methods      []Method
	Options      []OptionsMethod
	Dependencies []Dependency
}

// Synthesize derives the resource tree for the declared routes. apiNames are
// the logical API identifiers in declaration order; a route referencing an
// identifier outside that set is an error. Returns nil when there is nothing
// to synthesize.
func Synthesize(apiNames []string, routes []Route) (*Routing, error) {
	if len(apiNames) == 0 && len(routes) == 0 {
		return nil, nil
	}
	dependsOn := make(map[string][]string, len(apiNames))
	for _, name := range apiNames {
		dependsOn[name] = []string{}
	}
	resources := newOrderedResources()
	options := newOrderedOptions()
	methods := []Method{}
	for _, route := range routes {
		if _, ok := dependsOn[route.API]; !ok {
			return nil, &ErrUndeclaredAPI{API: route.API, Lambda: route.Lambda, Path: route.Path}
		}
		// The running key is the concatenation of display names from the
		// first segment down; it doubles as the dedup key so routes sharing
		// a prefix collapse onto the same resource.
		key := ""
		for _, segment := range strings.Split(route.Path, "/") {
			if segment == "" {
				continue
			}
			parent := fmt.Sprintf("!GetAtt %s.RootResourceId", route.API)
			if key != "" {
				parent = "!Ref " + resourcePrefix + key
			}
			key += displayName(segment)
			resources.put(key, Resource{
				Name:     resourcePrefix + key,
				PathPart: segment,
				Parents:  parent,
				API:      route.API,
			})
		}
		resource := "!Ref " + resourcePrefix + key
		methodName := key
		if key == "" {
			// A "/" route has no resource of its own; its method attaches to
			// the REST API's built-in root resource.
			resource = fmt.Sprintf("!GetAtt %s.RootResourceId", route.API)
			methodName = "Root"
		}
		verb := strings.ToUpper(route.Method)
		method := Method{
			Name:     methodName + verb,
			Method:   verb,
			Cors:     route.Cors,
			Resource: resource,
			Lambda:   route.Lambda,
			API:      route.API,
		}
		methods = append(methods, method)
		dependsOn[route.API] = append(dependsOn[route.API], method.Name)
		if route.Cors {
			options.put(key, OptionsMethod{
				Name:     methodName + "Options",
				Resource: resource,
				API:      route.API,
			})
		}
	}
	out := &Routing{
		Resources:    resources.values(),
		Methods:      methods,
		Options:      options.values(),
		Dependencies: make([]Dependency, 0, len(apiNames)),
	}
	for _, name := range apiNames {
		out.Dependencies = append(out.Dependencies, Dependency{Name: name, Methods: dependsOn[name]})
	}
	return out, nil
}

// displayName converts a path segment into its logical ID fragment:
// "items" becomes "Items", the variable segment "{short_name}" becomes
// "ShortNameVar".
func displayName(segment string) string {
	if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
		var b strings.Builder
		for _, part := range strings.Split(strings.Trim(segment, "{}"), "_") {
			b.WriteString(capitalize(part))
		}
		b.WriteString("Var")
		return b.String()
	}
	return capitalize(segment)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
