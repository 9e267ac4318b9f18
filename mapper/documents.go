package mapper

import (
	"strings"

	"github.com/en16931/cii2ubl/cii"
	"github.com/en16931/cii2ubl/ubl"
)

// UNTDID 1001 codes with a dedicated meaning on additional referenced
// documents
const (
	tenderTypeCode         = "50"
	invoicedObjectTypeCode = "130"
)

// mapAdditionalDocuments splits the additional referenced documents of the
// agreement into the tender or lot reference (BT-17), invoiced object
// identifiers (BT-18) and supporting documents (BG-24). Type codes are kept
// on the target reference.
func mapAdditionalDocuments(c *conversion, s *source, body *ubl.Body) {
	for _, ref := range s.agreement.AdditionalDocuments {
		code := strings.TrimSpace(ref.TypeCode)

		switch code {
		case tenderTypeCode:
			id := strings.TrimSpace(ref.IssuerAssignedID)
			if id == "" {
				continue
			}
			if body.OriginatorDocumentReference != nil {
				c.warnf("BT-17", "only one tender or lot reference is supported, '%s' is dropped", id)
				continue
			}
			body.OriginatorDocumentReference = &ubl.DocumentReference{ID: ubl.Identifier{Value: id}}

		case invoicedObjectTypeCode:
			if doc := objectReference(ref); doc != nil {
				body.AdditionalDocumentReferences = append(body.AdditionalDocumentReferences, *doc)
			}

		default:
			if doc := c.supportingDocument(ref); doc != nil {
				body.AdditionalDocumentReferences = append(body.AdditionalDocumentReferences, *doc)
			}
		}
	}
}

// objectReference converts an invoiced object identifier. The reference
// type code becomes the identification scheme.
func objectReference(ref cii.ReferencedDocument) *ubl.DocumentReference {
	id := strings.TrimSpace(ref.IssuerAssignedID)
	if id == "" {
		return nil
	}
	return &ubl.DocumentReference{
		ID:               ubl.Identifier{SchemeID: strings.TrimSpace(ref.ReferenceTypeCode), Value: id},
		DocumentTypeCode: invoicedObjectTypeCode,
	}
}

// supportingDocument converts a BG-24 entry including its external location
// and embedded attachment
func (c *conversion) supportingDocument(ref cii.ReferencedDocument) *ubl.DocumentReference {
	id := c.text("BT-122", ref.IssuerAssignedID)
	if id == "" {
		return nil
	}

	doc := &ubl.DocumentReference{
		ID:                  ubl.Identifier{Value: id},
		DocumentTypeCode:    strings.TrimSpace(ref.TypeCode),
		DocumentDescription: strings.TrimSpace(ref.Name),
	}

	var att ubl.Attachment
	if bin := ref.AttachmentBinaryObject; bin != nil {
		data := strings.TrimSpace(bin.Value)
		switch {
		case data == "":
			c.warnf("BT-125", "attachment of document '%s' is empty and dropped", id)
		case bin.MimeCode == "" || bin.Filename == "":
			c.errorf("BT-125", "attachment of document '%s' needs a MIME code and a filename", id)
			att.EmbeddedDocumentBinaryObject = &ubl.BinaryObject{MimeCode: bin.MimeCode, Filename: bin.Filename, Value: data}
		default:
			att.EmbeddedDocumentBinaryObject = &ubl.BinaryObject{MimeCode: bin.MimeCode, Filename: bin.Filename, Value: data}
		}
	}
	if uri := strings.TrimSpace(ref.URIID); uri != "" {
		att.ExternalReference = &ubl.ExternalReference{URI: uri}
	}
	if att.EmbeddedDocumentBinaryObject != nil || att.ExternalReference != nil {
		doc.Attachment = &att
	}

	return doc
}
