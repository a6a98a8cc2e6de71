package entity

import "testing"

func TestDoctorVerify(t *testing.T) {
	t.Run("pending doctor is not verified", func(t *testing.T) {
		d := &Doctor{Status: VerificationStatusPending}
		if d.IsVerified() {
			t.Error("expected pending doctor not to be verified")
		}
	})

	t.Run("verify flips status to verified", func(t *testing.T) {
		d := &Doctor{Status: VerificationStatusPending}
		d.Verify()
		if !d.IsVerified() {
			t.Error("expected doctor to be verified")
		}
	})

	t.Run("verify is idempotent", func(t *testing.T) {
		d := &Doctor{Status: VerificationStatusVerified}
		d.Verify()
		if d.Status != VerificationStatusVerified {
			t.Errorf("Status = %v, want %v", d.Status, VerificationStatusVerified)
		}
	})
}
