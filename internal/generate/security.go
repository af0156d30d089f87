package generate

// SecurityPolicy is the fixed security policy document.
const SecurityPolicy = `# Security Policy

## Supported Versions

Security fixes are prioritized for the latest version (rolling release).

| Version | Supported          |
| ------- | ------------------ |
| Latest  | :white_check_mark: |
| Older   | :x:                |

## Reporting a Vulnerability

If you find a vulnerability, please report it via the repository's
[Security](../../security) tab or by email to the maintainers.
`
