// Package stockbook keeps the inventory of a small retail shop: the products
// in stock, the purchases and sales made on them, and the profit those sales
// generated.
//
// The core functionalities include:
//   - Catalog: the products on hand, each with its sale price and the lots it
//     was bought in. Lots are never merged, so the full cost history of a
//     product is always available.
//   - Ledger: the append-only, chronological record of every purchase and
//     sale. It survives the deletion of the product it refers to.
//   - Accounting System: a stateless engine that derives totals, cost bases and
//     profits from the catalog and the ledger, using either the weighted
//     average cost or FIFO.
//   - Inventory: the single entry point, taking typed commands, validating
//     them and applying them atomically.
//
// This package serves as the foundational logic for the `stockbook`
// command-line tool.
package stockbook
