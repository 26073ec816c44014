package usecase

import "time"

// timeNow is swapped in tests to pin voucher eligibility checks.
var timeNow = time.Now
