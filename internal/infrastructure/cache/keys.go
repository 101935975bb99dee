package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const jobKeyNamespace = "eligibility:job:"

func JobKeyPrefix(jobID uuid.UUID) string {
	return jobKeyNamespace + jobID.String() + ":"
}

// EligibilityKey identifies one cached aggregate. The digest covers everything
// that changes the result: the job version, the settings version and the
// student/application population fingerprint. Any change to one of them misses.
func EligibilityKey(jobID uuid.UUID, jobUpdatedAt time.Time, settingsVersion int64, population string, includeIneligible bool) string {
	h := sha256.New()
	h.Write([]byte(jobUpdatedAt.UTC().Format(time.RFC3339Nano)))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatInt(settingsVersion, 10)))
	h.Write([]byte{0})
	h.Write([]byte(population))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatBool(includeIneligible)))
	return JobKeyPrefix(jobID) + hex.EncodeToString(h.Sum(nil))[:32]
}

func RefreshLockKey() string {
	return "eligibility:refresh:lock"
}
