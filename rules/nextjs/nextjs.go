// Package nextjs contains rules for Next.js applications.
package nextjs

// Plugin is the plugin namespace of the Next.js rules.
const Plugin = "nextjs"
