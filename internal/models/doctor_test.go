package models

import "testing"

func TestTimeListValueNilIsEmptyArray(t *testing.T) {
	var tl TimeList
	v, err := tl.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "[]" {
		t.Errorf("Value() = %v, want \"[]\"", v)
	}
}

func TestTimeListScan(t *testing.T) {
	var tl TimeList
	if err := tl.Scan([]byte(`["09:00","10:00 AM"]`)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(tl) != 2 || tl[0] != "09:00" || tl[1] != "10:00 AM" {
		t.Errorf("scanned = %v", tl)
	}

	if err := tl.Scan(nil); err != nil {
		t.Fatalf("Scan nil: %v", err)
	}
	if tl != nil {
		t.Errorf("scan of NULL should reset the list, got %v", tl)
	}

	if err := tl.Scan(42); err == nil {
		t.Errorf("scan of an int should fail")
	}
}

func TestPasswordHashing(t *testing.T) {
	d := &Doctor{}
	if err := d.SetPassword("hunter22"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if d.Password == "hunter22" {
		t.Fatalf("password stored in plaintext")
	}
	if !d.CheckPassword("hunter22") {
		t.Errorf("correct password rejected")
	}
	if d.CheckPassword("wrong") {
		t.Errorf("wrong password accepted")
	}
}
