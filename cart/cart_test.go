package cart

import "testing"

func TestAddItemMergesSameProduct(t *testing.T) {
	c := New()
	c.AddItem(1, "Brake Pad Set", 49.99, 2)
	c.AddItem(1, "Brake Pad Set", 49.99, 3)
	c.AddItem(1, "Brake Pad Set", 49.99, 1)

	if c.Len() != 1 {
		t.Fatalf("expected 1 line after repeated adds, got %d", c.Len())
	}
	line, ok := c.Line(1)
	if !ok {
		t.Fatal("line for product 1 missing")
	}
	if line.Quantity != 6 {
		t.Errorf("quantity = %d, want 6 (sum of requested quantities)", line.Quantity)
	}
}

func TestAddItemAppendsDistinctProducts(t *testing.T) {
	c := New()
	c.AddItem(1, "Brake Pad Set", 49.99, 1)
	c.AddItem(2, "Oil Filter", 12.50, 2)

	if c.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", c.Len())
	}
	lines := c.Lines()
	if lines[0].ProductID != 1 || lines[1].ProductID != 2 {
		t.Errorf("insertion order not preserved: %+v", lines)
	}
}

func TestAddItemNonPositiveQuantityDefaultsToOne(t *testing.T) {
	c := New()
	c.AddItem(1, "Spark Plug", 4.99, 0)
	line, _ := c.Line(1)
	if line.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", line.Quantity)
	}
}

func TestSubtotal(t *testing.T) {
	c := New()
	if c.Subtotal() != 0 {
		t.Errorf("empty cart subtotal = %v, want 0", c.Subtotal())
	}

	c.AddItem(1, "Alternator", 150.00, 1)
	c.AddItem(2, "Oil Filter", 12.50, 4)
	want := 150.00 + 12.50*4
	if got := c.Subtotal(); got != want {
		t.Errorf("subtotal = %v, want %v", got, want)
	}

	c.UpdateQuantity(2, 2)
	want = 150.00 + 12.50*2
	if got := c.Subtotal(); got != want {
		t.Errorf("subtotal after update = %v, want %v", got, want)
	}

	c.RemoveItem(1)
	want = 12.50 * 2
	if got := c.Subtotal(); got != want {
		t.Errorf("subtotal after remove = %v, want %v", got, want)
	}
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	c.AddItem(1, "Radiator", 10.00, 2)

	c.UpdateQuantity(1, 5)
	if got := c.Subtotal(); got != 50.00 {
		t.Errorf("subtotal = %v, want 50.00", got)
	}

	// unknown product is a no-op
	c.UpdateQuantity(99, 3)
	if c.Len() != 1 {
		t.Errorf("update of unknown product changed line count to %d", c.Len())
	}

	c.RemoveItem(1)
	if !c.Empty() {
		t.Error("cart should be empty after removing only line")
	}
	if c.Subtotal() != 0 {
		t.Errorf("empty cart subtotal = %v, want 0", c.Subtotal())
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(1, "Fuel Pump", 80.00, 2)
	c.UpdateQuantity(1, 0)
	if !c.Empty() {
		t.Error("setting quantity to 0 should remove the line")
	}

	c.AddItem(2, "Clutch Kit", 200.00, 1)
	c.UpdateQuantity(2, -3)
	if !c.Empty() {
		t.Error("negative quantity should remove the line")
	}
}

func TestRemoveThenAddCreatesFreshLine(t *testing.T) {
	c := New()
	c.AddItem(1, "Shock Absorber", 60.00, 5)
	c.RemoveItem(1)
	c.AddItem(1, "Shock Absorber", 60.00, 2)

	line, ok := c.Line(1)
	if !ok {
		t.Fatal("line missing after re-add")
	}
	if line.Quantity != 2 {
		t.Errorf("quantity = %d, want 2 (fresh line, not pre-removal quantity)", line.Quantity)
	}
}

func TestRemoveItemUnknownIsNoop(t *testing.T) {
	c := New()
	c.AddItem(1, "Timing Belt", 25.00, 1)
	c.RemoveItem(42)
	if c.Len() != 1 {
		t.Errorf("removing unknown product changed line count to %d", c.Len())
	}
}

func TestClearIsIdempotent(t *testing.T) {
	c := New()
	c.AddItem(1, "Brake Disc", 35.00, 2)
	c.AddItem(2, "Wiper Blade", 8.00, 4)

	c.Clear()
	if !c.Empty() || c.Subtotal() != 0 {
		t.Errorf("cart not empty after clear: len=%d subtotal=%v", c.Len(), c.Subtotal())
	}

	c.Clear()
	if !c.Empty() {
		t.Error("second clear should leave cart empty")
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	c := New()
	c.AddItem(1, "Air Filter", 15.00, 1)

	lines := c.Lines()
	lines[0].Quantity = 99

	line, _ := c.Line(1)
	if line.Quantity != 1 {
		t.Errorf("mutating the returned slice changed the cart: quantity = %d", line.Quantity)
	}
}
