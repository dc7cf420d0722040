// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validation sanitizes and type-checks inbound vote submissions and
bulk-import payloads.

# Submissions

ValidateSubmission trims all fields, then enforces:

  - name: required, at most 100 characters
  - firstChoice: required, at most 200 characters
  - secondChoice, thirdChoice: optional, at most 200 characters

Every field is rejected if it contains script-injection patterns
(<script, </script, javascript:, inline on...= handlers). On failure the
full list of violated rules is returned; nothing is stored.

# Import Documents

ValidateImportDocument structurally validates an entire export document.
The votes and weightConfig keys are both optional and distinguished from
empty values, but when present every record is checked field by field.
A single violation anywhere rejects the whole document - no partial
import.

Validated data is returned as ImportData; callers apply it in one
transaction.
*/
package validation
