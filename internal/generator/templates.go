package generator

import (
	"github.com/dublyo/dockergen/internal/stack"
)

// Family groups project types that share a Dockerfile shape
type Family string

const (
	FamilyNodeRuntime Family = "node-runtime"
	FamilyFrontend    Family = "frontend"
	FamilyInterpreted Family = "interpreted"
	FamilyCompiled    Family = "compiled"
	FamilyStatic      Family = "static-site"
	FamilyFallback    Family = "generic"
)

// WebPort is the port served by the nginx-based families
const WebPort = "80"

var familyByType = map[stack.Type]Family{
	stack.Node:         FamilyNodeRuntime,
	stack.Express:      FamilyNodeRuntime,
	stack.NestJS:       FamilyNodeRuntime,
	stack.React:        FamilyFrontend,
	stack.NextJS:       FamilyFrontend,
	stack.Vue:          FamilyFrontend,
	stack.Svelte:       FamilyFrontend,
	stack.Angular:      FamilyFrontend,
	stack.Python:       FamilyInterpreted,
	stack.PythonPip:    FamilyInterpreted,
	stack.PythonPoetry: FamilyInterpreted,
	stack.Golang:       FamilyCompiled,
	stack.StaticSite:   FamilyStatic,
}

// FamilyFor returns the template family for t. Types without a dedicated
// family, including unknown and extension types, map to FamilyFallback.
func FamilyFor(t stack.Type) Family {
	if f, ok := familyByType[t]; ok {
		return f
	}
	return FamilyFallback
}

// variants holds the template bodies a family offers. A family with a
// single shape leaves the other body empty.
type variants struct {
	multi  string
	single string
}

var catalog = map[Family]variants{
	FamilyNodeRuntime: {multi: nodeRuntimeTemplate, single: nodeRuntimeSingleTemplate},
	FamilyFrontend:    {multi: frontendTemplate},
	FamilyInterpreted: {single: pythonTemplate},
	FamilyCompiled:    {multi: golangTemplate, single: golangSingleTemplate},
	FamilyStatic:      {single: staticSiteTemplate},
	FamilyFallback:    {single: genericTemplate},
}

// Families returns every family in the catalog
func Families() []Family {
	return []Family{
		FamilyNodeRuntime,
		FamilyFrontend,
		FamilyInterpreted,
		FamilyCompiled,
		FamilyStatic,
		FamilyFallback,
	}
}

// OffersBothShapes reports whether the multistage preference changes the
// output of f
func OffersBothShapes(f Family) bool {
	v := catalog[f]
	return v.multi != "" && v.single != ""
}

// body picks the template for f, honoring the multistage preference only
// when the family offers both shapes
func body(f Family, multistage bool) (string, bool) {
	v, ok := catalog[f]
	if !ok {
		return "", false
	}
	switch {
	case multistage && v.multi != "":
		return v.multi, true
	case !multistage && v.single != "":
		return v.single, true
	case v.multi != "":
		return v.multi, true
	default:
		return v.single, v.single != ""
	}
}

const nodeRuntimeTemplate = `
# Stage 1: Builder
FROM node:18 AS builder
WORKDIR /app
COPY package*.json ./
RUN npm install
COPY . .
RUN npm run build || echo "No build step"

# Stage 2: Runner
FROM node:18-alpine
WORKDIR /app
COPY --from=builder /app .
EXPOSE {{.Port}}
CMD ["node", "{{.EntryPoint}}"]
`

const nodeRuntimeSingleTemplate = `
FROM node:18-alpine
WORKDIR /app
COPY package*.json ./
RUN npm install
COPY . .
RUN npm run build || echo "No build step"
EXPOSE {{.Port}}
CMD ["node", "{{.EntryPoint}}"]
`

const frontendTemplate = `
# Stage 1: Build frontend
FROM node:18 AS builder
WORKDIR /app
COPY package*.json ./
RUN npm install
COPY . .
RUN npm run build

# Stage 2: Serve with nginx
FROM nginx:alpine
COPY --from=builder /app/build /usr/share/nginx/html
EXPOSE 80
CMD ["nginx", "-g", "daemon off;"]
`

const pythonTemplate = `
FROM python:3.11-slim
WORKDIR /app
COPY requirements.txt .
RUN pip install -r requirements.txt
COPY . .
EXPOSE {{.Port}}
CMD ["python", "{{.EntryPoint}}"]
`

const golangTemplate = `
# Stage 1: Builder
FROM golang:1.21 AS builder
WORKDIR /app
COPY . .
RUN go build -o main

# Stage 2: Runner
FROM alpine:latest
WORKDIR /app
COPY --from=builder /app/main .
EXPOSE {{.Port}}
CMD ["./main"]
`

const golangSingleTemplate = `
FROM golang:1.21
WORKDIR /app
COPY . .
RUN go build -o main
EXPOSE {{.Port}}
CMD ["./main"]
`

const staticSiteTemplate = `
FROM nginx:alpine
COPY . /usr/share/nginx/html
EXPOSE 80
CMD ["nginx", "-g", "daemon off;"]
`

const genericTemplate = `
# Generic Dockerfile
FROM alpine
WORKDIR /app
COPY . .
CMD ["sh"]
`
