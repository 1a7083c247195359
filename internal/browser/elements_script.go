package browser

// elementsScript is shipped into the page and executed inside its
// runtime. It is a capture-free IIFE: it walks every element in
// document order and marshals back the read-only descriptor snapshot
// the classifier works on. Nothing in the document is mutated.
func elementsScript() string {
	return `(() => {
		try {
			const result = [];
			const wanted = ['id', 'data-testid', 'name', 'role', 'aria-label', 'type'];
			const all = document.querySelectorAll('*');

			for (let i = 0; i < all.length; i++) {
				const el = all[i];

				const attrs = {};
				for (const name of wanted) {
					const val = el.getAttribute(name);
					if (val) {
						attrs[name] = val;
					}
				}

				let text = '';
				if (el.innerText && el.innerText.trim()) {
					text = el.innerText;
				} else if (el.textContent && el.textContent.trim()) {
					text = el.textContent;
				}

				result.push({
					tag: el.tagName.toLowerCase(),
					text: text.trim(),
					attributes: attrs
				});
			}

			return result;
		} catch (e) {
			console.error('Error in elements traversal:', e);
			return [];
		}
	})()`
}
