package nextjs_test

import (
	"testing"

	"github.com/speakeasy-api/jsxlint/linter/tester"
	"github.com/speakeasy-api/jsxlint/rules"
	"github.com/speakeasy-api/jsxlint/rules/nextjs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleFontPreconnectRule_Fixtures(t *testing.T) {
	t.Parallel()

	pass := append(tester.Sources(
		`export const Test = () => (
        <div>
          <link rel="preconnect" href="https://fonts.gstatic.com"/>
          <link
            href={process.env.NEXT_PUBLIC_CANONICAL_URL}
            rel="canonical"
          />
          <link
            href={new URL("../public/favicon.ico", import.meta.url).toString()}
            rel="icon"
          />
        </div>
      )
    `,
		`<link href="https://fonts.gstatic.com" rel="preconnect"/>`,
		`<link HREF="https://fonts.gstatic.com" REL="preconnect"/>`,
		`<link href="https://fonts.googleapis.com/css2?family=Inter" rel="stylesheet"/>`,
		`<link href={"https://fonts.gstatic.com"} />`,
		`<Link href="https://fonts.gstatic.com" />`,
	), tester.Fixture{
		Source:   `<FontLink href="https://fonts.gstatic.com" rel="preconnect" />`,
		Settings: componentSettings("FontLink", "link"),
	})

	fail := append(tester.Sources(
		`
      export const Test = () => (
        <div>
          <link href="https://fonts.gstatic.com"/>
        </div>
      )
    `,
		`
      export const Test = () => (
        <div>
          <link rel="preload" href="https://fonts.gstatic.com"/>
        </div>
      )
    `,
		`<link href="https://fonts.gstatic.com" rel="preload"/>`,
		`<link href="https://fonts.gstatic.com/s/inter.woff2" rel={"preconnect"}/>`,
		`<link href="https://fonts.gstatic.com" rel="preconnect dns-prefetch"/>`,
		`<link href="https://fonts.gstatic.com" rel/>`,
	), tester.Fixture{
		Source:   `<FontLink href="https://fonts.gstatic.com" />`,
		Settings: componentSettings("FontLink", "link"),
	})

	tester.New(rules.NewRegistry(), nextjs.RuleGoogleFontPreconnect, pass, fail).TestAndSnapshot(t)
}

func TestGoogleFontPreconnectRule_Diagnostic(t *testing.T) {
	t.Parallel()

	src := `<link href="https://fonts.gstatic.com" rel="preload"/>`
	diags := lint(t, nextjs.RuleGoogleFontPreconnect, src)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, nextjs.RuleGoogleFontPreconnect, d.Rule)
	assert.Equal(t, nextjs.Plugin, d.Plugin)
	assert.Equal(t, "`rel=\"preconnect\"` is missing from Google Font.", d.Message())
	assert.Equal(t, "See: https://nextjs.org/docs/messages/google-font-preconnect", d.Help())
	assert.Equal(t, "link", src[d.Span.Start:d.Span.End])
}
